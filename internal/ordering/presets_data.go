package ordering

// Built-in rank tables for the Brazilian DRE layout.
//
// Group labels are keyed upper-cased; the three group levels use separate
// numeric bands (10s, 10s-60s, 100s-500s) inside one flat table.
var defaultGroupRanks = map[string]int{
	"LUCRO BRUTO":                  10,
	"DESPESAS OPERACIONAIS":        20,
	"FINANCEIRO E NÃO OPERACIONAL": 30,

	"VENDAS LÍQUIDAS":           10,
	"VENDAS LIQUIDAS":           10,
	"CUSTOS":                    20,
	"DESPESAS VARIÁVEIS":        30,
	"DESPESAS VARIAVEIS":        30,
	"DESPESAS FIXAS":            40,
	"RESULTADO FINANCEIRO":      50,
	"RESULTADO NÃO OPERACIONAL": 60,
	"RESULTADO NAO OPERACIONAL": 60,

	"VENDAS BRUTAS":             100,
	"RECEITAS OPERACIONAIS":     110,
	"BÔNUS E COMISSÕES":         120,
	"BONUS E COMISSOES":         120,
	"DEDUÇÕES":                  130,
	"DEDUCOES":                  130,
	"COMISSÕES A EMPREGADOS":    200,
	"DESPESAS COM VENDAS":       210,
	"DESPESAS DE PROPAGANDA":    220,
	"DESP COM FUNCIONAMENTO":    300,
	"DESPESA COM PESSOAL":       310,
	"DESPESA COM BENEFÍCIOS":    320,
	"SERVIÇOS DE TERCEIROS":     330,
	"SERVICOS DE TERCEIROS":     330,
	"DESP COM OCUPAÇÃO":         340,
	"DESPESA COM OCUPAÇÃO":      340,
	"RECEITAS FINANCEIRAS":      400,
	"DESPESAS FINANCEIRAS":      410,
	"RECEITAS NÃO OPERACIONAIS": 500,
	"DESPESAS NÃO OPERACIONAIS": 510,
}

// Canonical chart-of-accounts order, keyed by the exact trimmed account label.
var defaultLeafRanks = map[string]int{
	"Venda Bruta - Estoque":                                                1,
	"Vendas - Balcão":                                                      2,
	"Vendas - Oficina SG":                                                  3,
	"Vendas - Oficina SC":                                                  4,
	"Vendas - Acessórios":                                                  5,
	"Outras Mercadorias":                                                   6,
	"Combustíveis / Lubrif.":                                               7,
	"Garantia e Revisão":                                                   8,
	"Vendas - Alliance":                                                    9,
	"Mão de Obra Mecânica":                                                 10,
	"Mão de Obra Funilaria":                                                11,
	"Mão de Obra Pintura":                                                  12,
	"Mão de Obra Revisão":                                                  13,
	"Mão de Obra Garantia":                                                 14,
	"Mão de Obra Serv. Rápido":                                             15,
	"Lavagem e Lubrificação":                                               16,
	"Mão de Obra Terceiros":                                                17,
	"Outras Vendas":                                                        18,
	"(-) Devoluções das Vendas":                                            19,
	"Impostos s/ Vendas":                                                   20,
	"Custos das Vendas - Veículos":                                         21,
	"Custos com Acessórios Incluídos na NF do Veículo":                     22,
	"Custo com Outros Incluídos na NF do Veículo":                          23,
	"Custo - Balcão":                                                       24,
	"Custo - Oficina SG":                                                   25,
	"Custo - Oficina SC":                                                   26,
	"Custo - Acessórios":                                                   27,
	"Outras Mercadorias (Custo)":                                           28,
	"Custo Vendas - Combustíveis / Lubrif.":                                29,
	"Custo Vendas - Garantia e Revisão":                                    30,
	"Lubrificantes - SG":                                                   31,
	"(-) Custos das Devoluções Vendas Balcão":                              32,
	"(-) Custos das Devoluções Vendas SG":                                  33,
	"Custos - Mão de Obra Mecânica":                                        34,
	"Custos - Mão de Obra Funilaria":                                       35,
	"Custos - Mão de Obra Pintura":                                         36,
	"Custos - Mão de Obra Revisão":                                         37,
	"Custos - Mão de Obra Serv. Rápido":                                    38,
	"Custos - Lavagem e Lubrificação":                                      39,
	"Custos - Serviços de Terceiros":                                       40,
	"Custos - Encargos e Provisões de Férias e 13º Salário dos Produtivos": 41,
	"Bônus - Vendas do Estoque":                                            42,
	"Impostos sobre Bônus acima":                                           43,
	"Bônus Localização - Fundo Estrela":                                    44,
	"Comissão Fadireto":                                                    45,
	"Bônus StarClass":                                                      46,
	"Outros Bônus/Comissões":                                               47,
	"(-) Deduções s/ Bonus e comissões":                                    48,
	"(-) Estorno de Comissões e Bonificações":                              49,
	"Retorno Financiamentos":                                               50,
	"Comissão Consórcio":                                                   51,
	"Verbas de Bancos":                                                     52,
	"Receita de Despachante":                                               53,
	"Receita de Seguros":                                                   54,
	"Contribuição Montadora":                                               55,
	"Bônus de Performance":                                                 56,
	"Bônus Complementar":                                                   57,
	"Valores Recuperados - Mídia":                                          58,
	"Valores Recuperados - Fretes":                                         59,
	"Valores Recuperados - Incobráveis":                                    60,
	"Valores Recuperados - Juros s/ Venda Direta":                          61,
	"Valores Recuperados - Bônus":                                          62,
	"Transferências Internas":                                              63,
	"Bônus de Usados":                                                      64,
	"Valores Recuperados":                                                  65,
	"Outras Comissões":                                                     66,
	"Outras Rendas":                                                        67,
	"Outras Rendas 2":                                                      68,
	"(-) Impostos s/ Receitas Acima":                                       69,
	"PLUS Antecipado":                                                      70,
	"Bônus Incentivos - Atingimento de Metas":                              71,
	"Outras Comissões (Banco de Couro e Consórcio)":                        72,
	"Ganho ou Perda na Alienação do Ativo Permanente":                      73,
	"Outras Receitas - Outros Departamentos":                               74,
	"Recuperação Propaganda":                                               75,
	"Outras Rendas/Recuperações - S / tributos":                            76,
	"Recuperação/Perda de Garantia":                                        77,
	"(-) Cancelamentos":                                                    78,
	"(-) Impostos s/ Receitas":                                             79,
	"Rendimento do Hold Back":                                              80,
	"Rendimento Fundo Capitalização":                                       81,
	"Rendimento de Aplicação Financeira":                                   82,
	"Juros Recebidos":                                                      83,
	"Desconto / Bônus Obtido na Antecipação de Rotativos":                  84,
	"Outras Rendas Financeiras":                                            85,
	"Variação Monetária Ativa":                                             86,
	"(-) Impostos s/ Receitas Financeiras":                                 87,
	"Venda Imobilizado":                                                    88,
	"Impostos Recuperados":                                                 89,
	"Aluguel de Espaço":                                                    90,
	"Receitas de Dividendos Consórcio":                                     91,
	"Outras Rendas não operacionais":                                       92,
	"Recompra":                                                             93,
	"(-) Impostos s/ Receitas Não Operacionais":                            94,
	"Salários - Folha de Pagto.":                                           95,
	"Estagiário / Temporário":                                              96,
	"Pro-Labore":                                                           97,
	"DSR":                                                                  98,
	"Horas Extras":                                                         99,
	"Gratificações":                                                        100,
	"Encargos":                                                             101,
	"F.G.T.S. - Recolhido":                                                 102,
	"F.G.T.S. 40% Multa Recisão":                                           103,
	"Férias - Provisão + Enc":                                              104,
	"13º Salário - Provisão + Enc":                                         105,
	"I.N.S.S.":                                                             106,
	"I.N.S.S. - Prolabore":                                                 107,
	"Abono Pecuniário":                                                     108,
	"Férias / 13 Salário Indenizado":                                       109,
	"Insalubridade":                                                        110,
	"Indenizações Trabalhistas / Acordos trabalhistas":                     111,
	"Adicional Noturno":                                                    112,
	"Aviso Prévio":                                                         113,
	"Repouso Remunerado":                                                   114,
	"Outras despesas com pessoal":                                          115,
	"Vale Transporte":                                                      116,
	"Alimentação e refeição":                                               117,
	"Cursos / Formação Profissional":                                       118,
	"Participação Lucro (14°)":                                             119,
	"Gastos c/ Pessoal":                                                    120,
	"Salário Educação":                                                     121,
	"Assistência Médica e Odontológica":                                    122,
	"Fardamento e EPI":                                                     123,
	"Serviços de Terceiros":                                                124,
	"INSS sobre Prestação de Serviço Terceiros":                            125,
	"Serviços de Assistência Jurídica":                                     126,
	"Serviços de Contabilidade":                                            127,
	"Consultoria/Auditoria":                                                128,
	"Internet":                                                             129,
	"Vigilância":                                                           130,
	"Limpeza":                                                              131,
	"Processamento de Dados":                                               132,
	"Aluguéis":                                                             133,
	"Leasing":                                                              134,
	"IPTU":                                                                 135,
	"Amortizações / Depreciações":                                          136,
	"Água, Esgoto e Energia Elétrica":                                      137,
	"Copa e Bar":                                                           138,
	"Bens de Natureza Permanente":                                          139,
	"Cortesias / Brindes e Bonificações":                                   140,
	"Condução, Pedágio e Estacionamento":                                   141,
	"Combustível / Lubrificante operação":                                  142,
	"Donativos e Contribuições":                                            143,
	"Associações de Classe":                                                144,
	"Multas":                                                               145,
	"Despesas Judiciais e Legais":                                          146,
	"Impostos e Taxas Diversas":                                            147,
	"Despesas Telecomunicação":                                             148,
	"Locações de Máquinas e Equipamentos":                                  149,
	"Locação de Veículos":                                                  150,
	"Manutenção de Máquinas e Equipamentos":                                151,
	"Cons Manut Prédios e Benfeitorias":                                    152,
	"Cons Manut Maq, móveis e utensílios":                                  153,
	"Manutenção e reparo comp., sistemas e Software":                       154,
	"Manut Veículos de uso":                                                155,
	"Impresso / Material de escritório":                                    156,
	"Malotes, Despachos, Cartas e Telegramas":                              157,
	"Despesas com cópias":                                                  158,
	"Despesas com Cartório":                                                159,
	"Materiais de consumo":                                                 160,
	"Materiais de Limpeza":                                                 161,
	"Materiais de Informática":                                             162,
	"Ferramentas, materiais e serviços":                                    163,
	"Eventos":                                                              164,
	"Seguros":                                                              165,
	"Garantias Recusadas":                                                  166,
	"Licenciamento de veículos":                                            167,
	"Despesas bancárias e de cobrança":                                     168,
	"Fretes e carretos operacionais":                                       169,
	"Viagens e Representações":                                             170,
	"Despesas Indedutíveis":                                                171,
	"Outras Despesas":                                                      172,
	"Despesas com Propaganda e Promoção de Vendas":                         173,
	"Comissões a Empregados":                                               174,
	"Encargos INSS":                                                        175,
	"Encargos FGTS":                                                        176,
	"Lavagem":                                                              177,
	"Despesas com Emplacamento":                                            178,
	"Taxa Cartão de Crédito":                                               179,
	"Despachante":                                                          180,
	"Cortesias / Brindes":                                                  181,
	"Combustível / Lubrificante":                                           182,
	"Fretes e carretos":                                                    183,
	"Contrato de Manutenção":                                               184,
	"Despesas com Acessórios":                                              185,
	"Despesas com Vendas - Materiais Promocionais, Pinturas etc.":          186,
	"Revisão de entregas":                                                  187,
	"Fretes / Guincho":                                                     188,
	"IPVAs":                                                                189,
	"Outras despesas de vendas":                                            190,
	"Juros - Passivos":                                                     191,
	"Juros - Empréstimos Bancários":                                        192,
	"Juros - Estoque Financiado (Rotativo)":                                193,
	"Juros - Conta Garantida":                                              194,
	"Juros - Refis":                                                        195,
	"Juros - Titulos Negociados":                                           196,
	"Juros - Cheques Negociados":                                           197,
	"Juros - Financiamento de Test Drive":                                  198,
	"I.O.F. / I.O.C.":                                                      199,
	"Despesas Adm. - Fundo de Capitalização":                               200,
	"Despesa Bancária":                                                     201,
	"Despesa Carta de Fiança":                                              202,
	"Descontos Concedidos":                                                 203,
	"Despesa com Perda Op. Crédito":                                        204,
	"Despesas com Cartão de Crédito":                                       205,
	"Despesas com Antecipação de Cartão de Crédito":                        206,
	"Variação Monetária Passiva":                                           207,
	"Custo da Venda do Imobilizado":                                        208,
	"Reformas e benfeitorias de imóveis":                                   209,
	"Depreciação Best Drive":                                               210,
	"Depreciação - Outros":                                                 211,
	"Indenizações Trabalhistas de Processos Antigos":                       212,
	"Juros - Capital Próprio":                                              213,
	"Outras Despesas não Operacionais":                                     214,
	"Fracionamento de Preços":                                              215,
}
